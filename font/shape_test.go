package font

import (
	"sync"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestShapedAdvance(t *testing.T) {
	src := newTestSource(t, goregular.TTF)

	w := ShapedAdvance(src, 16, "Hello")
	if w <= 0 {
		t.Fatalf("ShapedAdvance(\"Hello\") = %v, want > 0", w)
	}

	// Pure in (text, size): repeated calls agree.
	if again := ShapedAdvance(src, 16, "Hello"); again != w {
		t.Errorf("ShapedAdvance not stable: %v then %v", w, again)
	}

	// Longer text is wider.
	if longer := ShapedAdvance(src, 16, "Hello, world"); longer <= w {
		t.Errorf("ShapedAdvance(longer) = %v, want > %v", longer, w)
	}

	// Larger size is wider.
	if bigger := ShapedAdvance(src, 32, "Hello"); bigger <= w {
		t.Errorf("ShapedAdvance at 32pt = %v, want > %v", bigger, w)
	}
}

func TestShapedAdvanceEmpty(t *testing.T) {
	src := newTestSource(t, goregular.TTF)
	if w := ShapedAdvance(src, 16, ""); w != 0 {
		t.Errorf("ShapedAdvance(\"\") = %v, want 0", w)
	}
	if w := ShapedAdvance(nil, 16, "Hello"); w != 0 {
		t.Errorf("ShapedAdvance(nil source) = %v, want 0", w)
	}
}

func TestShapedAdvanceConcurrent(t *testing.T) {
	src := newTestSource(t, goregular.TTF)
	want := ShapedAdvance(src, 16, "concurrent")

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := ShapedAdvance(src, 16, "concurrent"); got != want {
				t.Errorf("ShapedAdvance = %v, want %v", got, want)
			}
		}()
	}
	wg.Wait()
}
