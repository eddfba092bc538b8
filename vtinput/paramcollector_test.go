package vtinput

import "testing"

func TestCollectorParams_Basic(t *testing.T) {
	c := newCollector()
	for _, b := range []byte("1;23;;4") {
		c.collectParam(b)
	}
	params := c.params()
	if len(params) != 4 {
		t.Fatalf("len(params) = %d, want 4", len(params))
	}
	if params[0].Type != ParamNumber || params[0].Value != 1 {
		t.Errorf("params[0] = %+v", params[0])
	}
	if params[1].Type != ParamNumber || params[1].Value != 23 {
		t.Errorf("params[1] = %+v", params[1])
	}
	if params[2].Type != ParamMissing {
		t.Errorf("params[2] = %+v, want ParamMissing", params[2])
	}
	if params[3].Type != ParamNumber || params[3].Value != 4 {
		t.Errorf("params[3] = %+v", params[3])
	}
}

func TestCollectorParams_ColonSubstructure(t *testing.T) {
	c := newCollector()
	for _, b := range []byte("4:3;38:2::255:0:0") {
		c.collectParam(b)
	}
	params := c.params()
	if len(params) != 2 {
		t.Fatalf("len(params) = %d, want 2", len(params))
	}
	if params[0].Type != ParamString || params[0].Str != "4:3" {
		t.Errorf("params[0] = %+v", params[0])
	}
	if params[1].Type != ParamString || params[1].Str != "38:2::255:0:0" {
		t.Errorf("params[1] = %+v", params[1])
	}
}

func TestCollectorParams_Empty(t *testing.T) {
	c := newCollector()
	if got := c.params(); got != nil {
		t.Errorf("params() = %v, want nil", got)
	}
}

func TestCollectorParams_PrivateMarker(t *testing.T) {
	c := newCollector()
	for _, b := range []byte("?1049") {
		c.collectParam(b)
	}
	marker, ok := c.privateMarker()
	if !ok || marker != '?' {
		t.Fatalf("privateMarker() = %q, %v, want '?', true", marker, ok)
	}
	params := c.params()
	if len(params) != 1 || params[0].Value != 1049 {
		t.Fatalf("params = %+v, want single value 1049", params)
	}
}

func TestCollectorParams_OverflowFoldsIntoFinalToken(t *testing.T) {
	c := newCollector()
	for i := 0; i < maxParams+5; i++ {
		if i > 0 {
			c.collectParam(';')
		}
		c.collectParam('1')
	}
	params := c.params()
	if len(params) != maxParams {
		t.Fatalf("len(params) = %d, want %d", len(params), maxParams)
	}
	if params[maxParams-1].Type != ParamString {
		t.Errorf("final param should be folded string, got %+v", params[maxParams-1])
	}
}

func TestCollectorIntermediate_OverflowSetsDiscard(t *testing.T) {
	c := newCollector()
	for i := 0; i < maxIntermediates+1; i++ {
		c.collectIntermediate(' ')
	}
	if !c.discard {
		t.Error("discard should be set after intermediate overflow")
	}
}

func TestParamInt_DefaultSubstitution(t *testing.T) {
	missing := Param{Type: ParamMissing}
	if got := missing.Int(5); got != 5 {
		t.Errorf("missing.Int(5) = %d, want 5", got)
	}
	present := Param{Type: ParamNumber, Value: 3}
	if got := present.Int(5); got != 3 {
		t.Errorf("present.Int(5) = %d, want 3", got)
	}
}

func TestStringBuffer_GrowsAndCaps(t *testing.T) {
	SetMaxStringBufferSize(4)
	defer SetMaxStringBufferSize(1 << 20)

	sb := newStringBuffer()
	for i, b := range []byte("abcdef") {
		ok := sb.append(b)
		if i < 4 && !ok {
			t.Fatalf("append(%d) = false, want true within cap", i)
		}
		if i >= 4 && ok {
			t.Fatalf("append(%d) = true, want false past cap", i)
		}
	}
	if sb.String() != "abcd" {
		t.Errorf("String() = %q, want %q", sb.String(), "abcd")
	}
}
