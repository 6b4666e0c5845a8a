package metrics

import (
	"testing"
)

func TestMockProvider(t *testing.T) {
	provider := &MockProvider{}
	if err := provider.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer provider.Shutdown()

	snap, err := provider.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot failed: %v", err)
	}
	if snap == nil {
		t.Fatal("snapshot is nil")
	}

	for _, id := range AllMetrics {
		v, ok := snap.Values[id]
		if !ok {
			t.Errorf("snapshot missing metric %s", id)
			continue
		}
		if v.Normalized < 0 || v.Normalized > 100 {
			t.Errorf("%s normalized value %v outside [0, 100]", id, v.Normalized)
		}
	}

	if snap.GPUName == "" {
		t.Error("mock snapshot should report a GPU name")
	}
}
