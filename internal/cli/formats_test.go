package cli

import (
	"testing"

	"github.com/davispeixoto/object-playground/pkg/fixture"
)

func TestKnownExtensionsCoverLoaders(t *testing.T) {
	claimed := make(map[string]string) // extension -> format
	for _, l := range fixture.Loaders() {
		found := false
		for _, ext := range knownExtensions {
			if !l.Supports("model" + ext) {
				continue
			}
			found = true
			if prev, ok := claimed[ext]; ok {
				t.Errorf("extension %s claimed by both %s and %s", ext, prev, l.Format())
			}
			claimed[ext] = l.Format()
		}
		if !found {
			t.Errorf("loader %s claims none of the known extensions", l.Format())
		}
	}

	if len(claimed) != len(knownExtensions) {
		t.Errorf("loaders claim %d extensions, want %d", len(claimed), len(knownExtensions))
	}
}
