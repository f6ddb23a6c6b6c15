package main

import (
	"reflect"
	"testing"
)

func TestRewriteCodecShortcutArgs(t *testing.T) {
	tests := []struct {
		in   []string
		want []string
	}{
		{[]string{"slipbox"}, []string{"slipbox"}},
		{[]string{"slipbox", "2c12"}, []string{"slipbox", "decode", "2c12"}},
		{[]string{"slipbox", "2.3.12", "1.27"}, []string{"slipbox", "encode", "2.3.12", "1.27"}},
		{[]string{"slipbox", "--format", "text", "1a"}, []string{"slipbox", "--format", "text", "decode", "1a"}},
		{[]string{"slipbox", "--pretty", "1a"}, []string{"slipbox", "--pretty", "decode", "1a"}},
		{[]string{"slipbox", "--seed=4", "generate"}, []string{"slipbox", "--seed=4", "generate"}},
		{[]string{"slipbox", "--seed", "4", "generate"}, []string{"slipbox", "--seed", "4", "generate"}},
		{[]string{"slipbox", "move", "7", "3", "7+child"}, []string{"slipbox", "move", "7", "3", "7+child"}},
	}
	for _, tt := range tests {
		if got := rewriteCodecShortcutArgs(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Fatalf("rewrite(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
