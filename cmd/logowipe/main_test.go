package main

import (
	"reflect"
	"testing"
)

func TestListFlagSet(t *testing.T) {
	var f listFlag
	for _, a := range []string{"dreamweaver.PNG,title.PNG", "extra.png"} {
		if err := f.Set(a); err != nil {
			t.Fatalf("Set(%q): %v", a, err)
		}
	}
	want := []string{"dreamweaver.PNG", "title.PNG", "extra.png"}
	if !reflect.DeepEqual([]string(f), want) {
		t.Fatalf("got %v, want %v", f, want)
	}
}
