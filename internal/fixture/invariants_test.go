package fixture

import (
	"testing"

	"taml/internal/model"
	"taml/internal/testkit"
)

func TestDocumentInvariants(t *testing.T) {
	for name, doc := range map[string]*model.Document{
		"train-gate": TrainGate(),
		"handshake":  SenderReceiver(),
	} {
		if err := testkit.CheckDocument(doc); err != nil {
			t.Errorf("%s: %v", name, err)
		}
		if err := testkit.CheckDocument(doc.Clone()); err != nil {
			t.Errorf("%s clone: %v", name, err)
		}
	}
}

func TestCheckDocumentCatchesCorruption(t *testing.T) {
	doc := TrainGate()
	train, ok := doc.FindTemplate("Train")
	if !ok {
		t.Fatal("Train template missing")
	}
	doc.Template(train).States[0].Nr = 7
	if err := testkit.CheckDocument(doc); err == nil {
		t.Fatal("renumbered state went unnoticed")
	}
}
