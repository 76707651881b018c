package shell

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHistoryEmpty(t *testing.T) {
	t.Parallel()
	h := NewHistory()
	assert.Equal(t, "", h.Navigate(Up))
	assert.Equal(t, "", h.Navigate(Down))
	assert.Equal(t, -1, h.Index())
}

func TestHistoryPushSkipsBlank(t *testing.T) {
	t.Parallel()
	h := NewHistory()
	submissions := []string{"help", "", "whoami", "   ", "help"}
	nonEmpty := 0
	for _, s := range submissions {
		h.Push(s)
		if s != "" && s != "   " {
			nonEmpty++
		}
	}
	assert.Equal(t, nonEmpty, h.Len())
	assert.Equal(t, []string{"help", "whoami", "help"}, h.Entries())
}

func TestHistoryNavigate(t *testing.T) {
	t.Parallel()
	h := NewHistory()
	h.Push("a")
	h.Push("b")
	h.Push("c")

	assert.Equal(t, "c", h.Navigate(Up))
	assert.Equal(t, 0, h.Index())
	assert.Equal(t, "b", h.Navigate(Up))
	assert.Equal(t, "a", h.Navigate(Up))
	assert.Equal(t, "a", h.Navigate(Up), "up at the oldest entry is idempotent")
	assert.Equal(t, 2, h.Index())

	assert.Equal(t, "b", h.Navigate(Down))
	assert.Equal(t, "c", h.Navigate(Down))
	assert.Equal(t, "", h.Navigate(Down))
	assert.Equal(t, -1, h.Index())
	assert.Equal(t, "", h.Navigate(Down), "down past the newest entry is idempotent")
	assert.Equal(t, -1, h.Index())
}

func TestHistoryPushResetsCursor(t *testing.T) {
	t.Parallel()
	h := NewHistory()
	h.Push("a")
	h.Push("b")
	h.Navigate(Up)
	h.Navigate(Up)
	h.Push("")
	assert.Equal(t, -1, h.Index())
	assert.Equal(t, "b", h.Navigate(Up))
	h.Reset()
	assert.Equal(t, -1, h.Index())
}

func TestHistoryUpBoundary(t *testing.T) {
	t.Parallel()
	for n := 1; n <= 6; n++ {
		t.Run(fmt.Sprint(n), func(t *testing.T) {
			t.Parallel()
			h := NewHistory()
			for i := range n {
				h.Push(fmt.Sprintf("cmd%d", i))
			}
			var got string
			for range n {
				got = h.Navigate(Up)
			}
			assert.Equal(t, "cmd0", got)
			for range 3 {
				assert.Equal(t, "cmd0", h.Navigate(Up))
			}
			assert.True(t, h.Index() >= -1 && h.Index() < h.Len())
		})
	}
}
