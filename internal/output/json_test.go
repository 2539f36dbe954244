package output

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"
)

func TestJSONFormatter_Format(t *testing.T) {
	var buf bytes.Buffer
	if err := NewJSONFormatter(nil).Format(&buf, map[string]interface{}{"size": 3}); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	var got map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}
	if got["size"] != float64(3) {
		t.Errorf("size = %v, want 3", got["size"])
	}
}

func TestJSONFormatter_FormatReport(t *testing.T) {
	var buf bytes.Buffer
	f := NewJSONFormatter(&Options{Baseline: "for_loop"})
	if err := f.FormatReport(&buf, sampleReport()); err != nil {
		t.Fatalf("FormatReport() error = %v", err)
	}

	var doc reportDocument
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}

	if doc.ProblemSize != 1024 || doc.Trials != 10 || doc.Warmup != 1 {
		t.Errorf("header = %+v, want size 1024, trials 10, warmup 1", doc)
	}
	if len(doc.Cases) != 3 {
		t.Fatalf("len(cases) = %d, want 3", len(doc.Cases))
	}

	loop := doc.Cases[0]
	if loop.Mean != (2 * time.Millisecond).String() {
		t.Errorf("mean = %q, want %q", loop.Mean, (2 * time.Millisecond).String())
	}
	if loop.BandwidthGBs != 10 {
		t.Errorf("bandwidthGBs = %v, want 10", loop.BandwidthGBs)
	}

	failed := doc.Cases[2]
	if failed.Status != "failed" || failed.Error == "" {
		t.Errorf("failed case = %+v, want status failed with error", failed)
	}
}

func TestJSONFormatter_OmitsEmptyError(t *testing.T) {
	var buf bytes.Buffer
	if err := NewJSONFormatter(nil).FormatReport(&buf, sampleReport()); err != nil {
		t.Fatalf("FormatReport() error = %v", err)
	}

	var raw struct {
		Cases []map[string]interface{} `json:"cases"`
	}
	if err := json.Unmarshal(buf.Bytes(), &raw); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if _, ok := raw.Cases[0]["error"]; ok {
		t.Error("successful case should not carry an error field")
	}
	if _, ok := raw.Cases[2]["error"]; !ok {
		t.Error("failed case should carry an error field")
	}
}
