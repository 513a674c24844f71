package diagnostic

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"
)

func TestRecordRoundTrip(t *testing.T) {
	engine := New(nil)
	for _, text := range corpus {
		original := engine.Diagnose(text)
		restored, err := FromRecord(ToRecord(original))
		if err != nil {
			t.Errorf("FromRecord failed for %q: %v", text, err)
			continue
		}
		if !reflect.DeepEqual(original, restored) {
			t.Errorf("round trip for %q lost information:\noriginal: %+v\nrestored: %+v", text, original, restored)
		}
	}
}

func TestRecordRoundTripThroughJSON(t *testing.T) {
	engine := New(nil)
	original := engine.Diagnose("Maybe write something that could possibly be good")

	data, err := json.Marshal(ToRecord(original))
	if err != nil {
		t.Fatalf("marshal error = %v", err)
	}

	var rec map[string]interface{}
	if err := json.Unmarshal(data, &rec); err != nil {
		t.Fatalf("unmarshal error = %v", err)
	}

	restored, err := FromRecord(rec)
	if err != nil {
		t.Fatalf("FromRecord error = %v", err)
	}
	if !reflect.DeepEqual(original, restored) {
		t.Errorf("JSON round trip lost information:\noriginal: %+v\nrestored: %+v", original, restored)
	}
}

func TestRecordUsesPrimitivesOnly(t *testing.T) {
	engine := New(nil)
	rec := ToRecord(engine.Diagnose("Write a story"))

	var check func(path string, value interface{})
	check = func(path string, value interface{}) {
		switch v := value.(type) {
		case string, float64, int, bool, nil:
		case []interface{}:
			for _, item := range v {
				check(path, item)
			}
		case map[string]interface{}:
			for key, item := range v {
				check(path+"."+key, item)
			}
		default:
			t.Errorf("field %s has non-primitive type %T", path, value)
		}
	}
	check("record", rec)
}

func TestFromRecordRejectsInvalid(t *testing.T) {
	engine := New(nil)
	valid := ToRecord(engine.Diagnose("Write a story"))

	mutate := func(fn func(rec map[string]interface{})) map[string]interface{} {
		rec := make(map[string]interface{}, len(valid))
		for k, v := range valid {
			rec[k] = v
		}
		fn(rec)
		return rec
	}

	tests := []struct {
		name string
		rec  map[string]interface{}
	}{
		{name: "nil record", rec: nil},
		{
			name: "missing quality",
			rec:  mutate(func(rec map[string]interface{}) { delete(rec, "quality") }),
		},
		{
			name: "quality is a string",
			rec:  mutate(func(rec map[string]interface{}) { rec["quality"] = "high" }),
		},
		{
			name: "unknown health band",
			rec:  mutate(func(rec map[string]interface{}) { rec["health"] = "terrible" }),
		},
		{
			name: "health is a number",
			rec:  mutate(func(rec map[string]interface{}) { rec["health"] = 3 }),
		},
		{
			name: "issues is not a list",
			rec:  mutate(func(rec map[string]interface{}) { rec["issues"] = "none" }),
		},
		{
			name: "issue entry is not an object",
			rec:  mutate(func(rec map[string]interface{}) { rec["issues"] = []interface{}{"oops"} }),
		},
		{
			name: "issue with bad severity",
			rec: mutate(func(rec map[string]interface{}) {
				rec["issues"] = []interface{}{map[string]interface{}{
					"kind":        "vague-verb",
					"severity":    "fatal",
					"description": "d",
					"suggestion":  "s",
					"location":    "l",
				}}
			}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := FromRecord(tt.rec); !errors.Is(err, ErrInvalidRecord) {
				t.Errorf("FromRecord() error = %v, want ErrInvalidRecord", err)
			}
		})
	}
}

func TestFromRecordIgnoresUnknownKeys(t *testing.T) {
	engine := New(nil)
	original := engine.Diagnose("Write a story")

	rec := ToRecord(original)
	rec["engineVersion"] = "9.9.9"
	rec["extra"] = map[string]interface{}{"nested": true}

	restored, err := FromRecord(rec)
	if err != nil {
		t.Fatalf("FromRecord() error = %v", err)
	}
	if !reflect.DeepEqual(original, restored) {
		t.Error("unknown keys should be ignored, not affect the result")
	}
}
