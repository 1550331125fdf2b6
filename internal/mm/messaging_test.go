//    topicmodels
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package mm

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestEmitRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	m := NewMessageMakerWithDefaults()
	m.Out = &buf
	m.BW = true
	m.LLvl = MSGNOTE

	m.TMI("too much information")
	if buf.Len() != 0 {
		t.Fatalf("MSGTMI should be suppressed at MSGNOTE: %q", buf.String())
	}

	m.NOTE("fitted")
	if got := buf.String(); got != "[TPM] fitted\n" {
		t.Errorf("Emit() = %q", got)
	}
}

func TestSprintfGroupsDigits(t *testing.T) {
	m := NewMessageMakerWithDefaults()
	if got := m.Sprintf("%d documents", 12345); got != "12,345 documents" {
		t.Errorf("Sprintf() = %q", got)
	}
}

func TestECNamesCaller(t *testing.T) {
	var buf bytes.Buffer
	m := NewFncMessageMaker("Vectorise()")
	m.Out = &buf
	m.BW = true
	m.EC(nil)
	if buf.Len() != 0 {
		t.Fatal("EC(nil) should be silent")
	}
	m.EC(errors.New("boom"))
	if !strings.Contains(buf.String(), "Vectorise()") || !strings.Contains(buf.String(), "boom") {
		t.Errorf("EC() = %q", buf.String())
	}
}

func TestColorStripsTagsInBW(t *testing.T) {
	m := NewMessageMakerWithDefaults()
	m.BW = true
	if got := m.ColStyle("C1S1topicC0S0"); got != "topic" {
		t.Errorf("ColStyle() = %q", got)
	}
}
