package format

import (
	"bytes"
	"strings"
	"testing"

	"slipbox/internal/address"
	"slipbox/internal/model"
)

func TestWriteEDN(t *testing.T) {
	v := map[string]any{
		"data": map[string]any{
			"insertAt": 3,
			"ok":       true,
			"zones":    []string{"2a", "3"},
			"none":     nil,
		},
	}
	var buf bytes.Buffer
	if err := WriteEDN(&buf, v, false); err != nil {
		t.Fatalf("WriteEDN: %v", err)
	}
	want := `{:data {:insert-at 3 :none nil :ok true :zones ["2a" "3"]}}` + "\n"
	if buf.String() != want {
		t.Fatalf("got %q, want %q", buf.String(), want)
	}
}

func TestWriteEDN_Pretty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteEDN(&buf, map[string]any{"a": []int{1}, "b": []int{}}, true); err != nil {
		t.Fatalf("WriteEDN: %v", err)
	}
	want := "{\n  :a [\n    1\n  ]\n  :b []\n}\n"
	if buf.String() != want {
		t.Fatalf("got %q, want %q", buf.String(), want)
	}
}

func TestKeyword(t *testing.T) {
	tests := map[string]string{
		"data":      ":data",
		"insertAt":  ":insert-at",
		"dropZones": ":drop-zones",
		"snake_key": ":snake-key",
		"ID":        ":id",
	}
	for in, want := range tests {
		if got := Keyword(in); got != want {
			t.Fatalf("Keyword(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestWrite_UnknownFormat(t *testing.T) {
	if err := Write(&bytes.Buffer{}, 1, "xml", false); err == nil {
		t.Fatalf("expected error")
	}
	if Valid("xml") || !Valid("text") {
		t.Fatalf("Valid mismatch")
	}
}

func TestOutline_WriteText(t *testing.T) {
	rows := []model.Row{
		model.NewItem("0", "root", address.Path{1}),
		model.NewItem("1", "child", address.Path{1, 1}),
		model.DropZone{Key: "2+child", Label: "moved", Path: address.Path{1, 1, 1}, Address: "1a1", Kind: model.ZoneChild},
	}
	tests := []struct {
		display Display
		indent  bool
		want    string
	}{
		{DisplayPrefix, true, "1 - root\n  1a - child\n    + 1a1 - moved\n"},
		{DisplaySuffix, false, "root ( 1 )\nchild ( 1a )\n+ moved ( 1a1 )\n"},
		{DisplayHidden, false, "root\nchild\n+ moved\n"},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		if err := Write(&buf, Outline{Rows: rows, Display: tt.display, Indent: tt.indent}, "text", false); err != nil {
			t.Fatalf("Write: %v", err)
		}
		if buf.String() != tt.want {
			t.Fatalf("%s: got %q, want %q", tt.display, buf.String(), tt.want)
		}
	}
}

func TestDisplay(t *testing.T) {
	if d, err := ParseDisplay(" Suffix "); err != nil || d != DisplaySuffix {
		t.Fatalf("ParseDisplay = %v, %v", d, err)
	}
	if _, err := ParseDisplay("sideways"); err == nil || !strings.Contains(err.Error(), "sideways") {
		t.Fatalf("expected error naming the mode, got %v", err)
	}
	if DisplayHidden.Next() != DisplayPrefix {
		t.Fatalf("hidden should cycle back to prefix")
	}
}
