package router

import (
	"testing"

	"github.com/joseph-ayodele/idparse/constants"
	"github.com/joseph-ayodele/idparse/internal/fields"
)

func TestResultSchemaValidatesRenderedRecords(t *testing.T) {
	r := New(fields.Options{}, nil)

	cases := map[string]struct {
		docType string
		text    string
	}{
		"nid full":     {"NID", nidText},
		"nid sparse":   {"NID", "nothing matches here"},
		"tin":          {"TIN", "Name: RAHIM UDDIN TIN: 123456789012"},
		"bo":           {"BO_ACCOUNT", "BO A/C: 1203450067891234"},
		"unknown type": {"PASSPORT", nidText},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			res := r.Route(tc.docType, tc.text)
			rendered, err := res.RenderedJSON()
			if err != nil {
				t.Fatalf("RenderedJSON: %v", err)
			}
			schema := r.ResultSchema(res.DocumentType)
			if err := ValidateJSONAgainstSchema(schema, rendered); err != nil {
				t.Fatalf("rendered record rejected: %v", err)
			}
		})
	}
}

func TestResultSchemaRejectsMismatches(t *testing.T) {
	r := New(fields.Options{}, nil)
	schema := r.ResultSchema(constants.NID)

	t.Run("wrong document type", func(t *testing.T) {
		res := r.Route("TIN", "TIN: 123456789012")
		rendered, err := res.RenderedJSON()
		if err != nil {
			t.Fatal(err)
		}
		if err := ValidateJSONAgainstSchema(schema, rendered); err == nil {
			t.Fatal("TIN record passed the NID schema")
		}
	})

	t.Run("detected value on a non-applicable field", func(t *testing.T) {
		payload := []byte(`{
			"document_type": "NID",
			"extracted_text": "x",
			"name": "Not detected",
			"dob": "Not detected",
			"nid": "Not detected",
			"bo_account": "1203450067891234",
			"tin": "Not detected"
		}`)
		if err := ValidateJSONAgainstSchema(schema, payload); err == nil {
			t.Fatal("bo_account value passed the NID schema")
		}
	})

	t.Run("missing field", func(t *testing.T) {
		payload := []byte(`{"document_type": "NID", "extracted_text": "x"}`)
		if err := ValidateJSONAgainstSchema(schema, payload); err == nil {
			t.Fatal("incomplete record passed")
		}
	})

	t.Run("extra field", func(t *testing.T) {
		res := r.Route("NID", "nothing")
		rendered, err := res.RenderedJSON()
		if err != nil {
			t.Fatal(err)
		}
		payload := append(rendered[:len(rendered)-1], []byte(`,"passport":"x"}`)...)
		if err := ValidateJSONAgainstSchema(schema, payload); err == nil {
			t.Fatal("additional property passed")
		}
	})

	t.Run("malformed schema input", func(t *testing.T) {
		if err := ValidateJSONAgainstSchema(schema, []byte("{not json")); err == nil {
			t.Fatal("malformed JSON passed")
		}
	})
}
