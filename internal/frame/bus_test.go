package frame_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/young1lin/pillrow/internal/frame"
)

func TestBusPostsInRegistrationOrder(t *testing.T) {
	t.Parallel()

	bus := frame.NewBus()
	for i := 0; i < 100; i++ {
		bus.Listen(func(frame.Event) {})()
	}

	var order []int
	for i := 0; i < 4; i++ {
		i := i
		stop := bus.Listen(func(frame.Event) { order = append(order, i) })
		if i == 2 {
			stop()
		}
	}

	src := frame.NewWindow("src")
	bus.Post(src, []byte("{}"))
	assert.Equal(t, []int{0, 1, 3}, order)
	assert.Equal(t, 3, bus.Listeners())
}
