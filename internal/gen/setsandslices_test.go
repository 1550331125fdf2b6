//    topicmodels
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package gen

import (
	"reflect"
	"testing"
)

func TestSetSubtraction(t *testing.T) {
	aa := []string{"a", "b", "c", "d", "g", "h"}
	bb := []string{"a", "b", "e", "f", "g"}
	got := SetSubtraction(aa, bb)
	want := []string{"c", "d", "h"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SetSubtraction() = %v, want %v", got, want)
	}
	if len(aa) != 6 || aa[0] != "a" {
		t.Errorf("SetSubtraction() modified its input: %v", aa)
	}
}

func TestUnique(t *testing.T) {
	got := Unique([]int{3, 1, 3, 2, 1})
	want := []int{3, 1, 2}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Unique() = %v, want %v", got, want)
	}
}

func TestStringMapKeysIntoSlice(t *testing.T) {
	m := map[string]int{"pear": 1, "apple": 2, "fig": 3}
	got := StringMapKeysIntoSlice(m)
	want := []string{"apple", "fig", "pear"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("StringMapKeysIntoSlice() = %v, want %v", got, want)
	}
}

func TestContainsN(t *testing.T) {
	if n := ContainsN([]string{"a", "b", "a"}, "a"); n != 2 {
		t.Errorf("ContainsN() = %d, want 2", n)
	}
	if _, ok := ToSet([]string{"x"})["x"]; !ok {
		t.Error("ToSet() lost a member")
	}
}
