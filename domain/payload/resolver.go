// Package payload normalizes the several legacy storage shapes an analysis
// run may arrive in into the single typed models.Payload the fragments
// consume. Resolution order is fixed and first-match-wins; shapes are never
// merged.
package payload

import (
	"bytes"
	"encoding/json"
	"log"

	"leadscope/models"
)

// runEnvelope is the nested run->payload storage shape: a payloads
// collection whose entries wrap the detail under analysis_data.
type runEnvelope struct {
	AnalysisData json.RawMessage `json:"analysis_data"`
}

// Resolve produces the canonical payload for a lead's analysis record.
// The record may be nil (a light run, or a lead never analyzed); that is
// not an error and resolves to the empty payload. Callers treat an empty
// payload as "nothing to show" and fragment predicates fail closed.
//
// Shapes are checked in strict order:
//  1. the first element of the payloads collection carrying analysis_data
//  2. the deep_payload column
//  3. the xray_payload column
//  4. the record body itself
//  5. the empty payload
func Resolve(lead *models.Lead, rec *models.AnalysisRecord) models.Payload {
	if rec == nil {
		return models.Payload{}
	}

	if raw := firstRunData(rec.Payloads); raw != nil {
		return decode(lead, "payloads[0].analysis_data", raw)
	}
	if present(rec.DeepPayload) {
		return decode(lead, "deep_payload", rec.DeepPayload)
	}
	if present(rec.XrayPayload) {
		return decode(lead, "xray_payload", rec.XrayPayload)
	}
	if present(rec.Body) {
		return decode(lead, "body", rec.Body)
	}
	return models.Payload{}
}

// firstRunData extracts analysis_data from the first element of a payloads
// collection, or nil if the collection is absent, empty, or untyped.
func firstRunData(raw json.RawMessage) json.RawMessage {
	if !present(raw) {
		return nil
	}
	var runs []runEnvelope
	if err := json.Unmarshal(raw, &runs); err != nil {
		return nil
	}
	if len(runs) == 0 || !present(runs[0].AnalysisData) {
		return nil
	}
	return runs[0].AnalysisData
}

func decode(lead *models.Lead, shape string, raw json.RawMessage) models.Payload {
	var p models.Payload
	if err := json.Unmarshal(raw, &p); err != nil {
		handle := ""
		if lead != nil {
			handle = lead.Handle
		}
		log.Printf("[PayloadResolver] malformed %s for lead %s: %v", shape, handle, err)
		return models.Payload{}
	}
	return p
}

// present reports whether raw JSON holds a real value rather than being
// empty, null, or an empty object/array.
func present(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	switch {
	case len(trimmed) == 0:
		return false
	case bytes.Equal(trimmed, []byte("null")):
		return false
	case bytes.Equal(trimmed, []byte("{}")):
		return false
	case bytes.Equal(trimmed, []byte("[]")):
		return false
	}
	return true
}
