package billy_test

import (
	"bytes"
	"fmt"

	"github.com/jmgilman/go/region/billy"
	"github.com/jmgilman/go/region/core"
)

// Example demonstrates shared ownership of an in-memory region through a
// reference-counted handle.
func Example() {
	r, err := billy.NewMemory()
	if err != nil {
		fmt.Println(err)
		return
	}

	h := core.NewHandle(r)
	defer func() { _ = h.Release() }()

	data := bytes.Repeat([]byte{0x42}, 4096)
	n, err := h.WriteAt(data, 0)
	if err != nil {
		fmt.Println(err)
		return
	}

	got := make([]byte, 4096)
	if err := h.ReadAt(got, 0); err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(n, bytes.Equal(got, data))
	// Output: 4096 true
}
