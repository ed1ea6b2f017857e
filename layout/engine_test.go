package layout

import (
	"errors"
	"image"
	"sync"
	"testing"
	"time"

	"github.com/tsawler/scantab/model"
)

func TestRegistry(t *testing.T) {
	e := NewStaticEngine(Region{Type: "table", BBox: model.NewBBox(0, 0, 10, 10)})
	Register("test-static", e)

	got, ok := Get("test-static")
	if !ok {
		t.Fatal("Expected engine to be registered")
	}
	if got != e {
		t.Error("Expected registry to return the registered engine")
	}

	if _, ok := Get("no-such-engine"); ok {
		t.Error("Expected lookup of unknown engine to fail")
	}

	found := false
	for _, name := range List() {
		if name == "test-static" {
			found = true
		}
	}
	if !found {
		t.Error("Expected List to include registered engine")
	}
}

func TestStaticEngine(t *testing.T) {
	regions := []Region{
		{Type: "text", BBox: model.NewBBox(0, 0, 100, 20)},
		{Type: "table", BBox: model.NewBBox(0, 30, 100, 90), Confidence: 0.9},
	}
	e := NewStaticEngine(regions...)

	img := image.NewRGBA(image.Rect(0, 0, 100, 100))
	got, err := e.Analyze(img)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Expected 2 regions, got %d", len(got))
	}
	if got[1].Type != "table" {
		t.Errorf("Expected second region type table, got %q", got[1].Type)
	}

	if e.Name() != "static" {
		t.Errorf("Expected name static, got %q", e.Name())
	}
	if err := e.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}
}

// countingEngine tracks how many goroutines are inside Analyze at once.
type countingEngine struct {
	mu        sync.Mutex
	active    int
	maxActive int
}

func (e *countingEngine) Analyze(img image.Image) ([]Region, error) {
	e.mu.Lock()
	e.active++
	if e.active > e.maxActive {
		e.maxActive = e.active
	}
	e.mu.Unlock()

	time.Sleep(5 * time.Millisecond)

	e.mu.Lock()
	e.active--
	e.mu.Unlock()
	return nil, nil
}

func (e *countingEngine) Name() string { return "counting" }
func (e *countingEngine) Close() error { return nil }

func TestSerialized_QueuesConcurrentAnalyze(t *testing.T) {
	inner := &countingEngine{}
	e := Serialized(inner)

	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := e.Analyze(img); err != nil {
				t.Errorf("Analyze failed: %v", err)
			}
		}()
	}
	wg.Wait()

	if inner.maxActive != 1 {
		t.Errorf("Expected Analyze calls to queue, saw %d concurrent", inner.maxActive)
	}
}

func TestSerialized_Idempotent(t *testing.T) {
	e := Serialized(&countingEngine{})
	if Serialized(e) != e {
		t.Error("Expected rewrapping a serialized engine to return it unchanged")
	}
	if Serialized(nil) != nil {
		t.Error("Expected nil engine to stay nil")
	}
}

func TestStaticEngine_Error(t *testing.T) {
	wantErr := errors.New("inference blew up")
	e := &StaticEngine{Err: wantErr}

	_, err := e.Analyze(image.NewRGBA(image.Rect(0, 0, 10, 10)))
	if !errors.Is(err, wantErr) {
		t.Errorf("Expected configured error, got %v", err)
	}
}
