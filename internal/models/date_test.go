package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDateJSON(t *testing.T) {
	inv := Invoice{
		ID:       7,
		CompCode: "ibm",
		Amt:      100,
		AddDate:  NewDate(time.Date(2026, 10, 15, 18, 45, 0, 0, time.UTC)),
	}

	b, err := json.Marshal(inv)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"id":7,"comp_code":"ibm","amt":100,"paid":false,"add_date":"2026-10-15","paid_date":null}`
	if string(b) != want {
		t.Fatalf("expected %s, got %s", want, b)
	}
}

func TestDateUnmarshalTimestamp(t *testing.T) {
	var d Date
	if err := json.Unmarshal([]byte(`"2026-10-15T00:00:00.000Z"`), &d); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if d.String() != "2026-10-15" {
		t.Fatalf("unexpected date %s", d)
	}
}

func TestDatePtr(t *testing.T) {
	if DatePtr(nil) != nil {
		t.Fatal("expected nil for nil time")
	}
	ts := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)
	if got := DatePtr(&ts); got == nil || got.String() != "2026-03-04" {
		t.Fatalf("unexpected %v", got)
	}
}
