package types

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestState(t *testing.T) {
	s := NewState()
	s.Write8(0x12)
	s.Write16(0x3456)
	s.Write32(0x789ABCDE)
	s.WriteBool(true)
	s.WriteData([]byte{0xF0, 0x0D})

	want := []byte{0x12, 0x56, 0x34, 0xDE, 0xBC, 0x9A, 0x78, 0x01, 0xF0, 0x0D}
	if diff := cmp.Diff(want, s.Bytes()); diff != "" {
		t.Fatalf("unexpected bytes (-want +got):\n%s", diff)
	}

	if v := s.Read8(); v != 0x12 {
		t.Errorf("Read8: expected 0x12, got %#02x", v)
	}
	if v := s.Read16(); v != 0x3456 {
		t.Errorf("Read16: expected 0x3456, got %#04x", v)
	}
	if v := s.Read32(); v != 0x789ABCDE {
		t.Errorf("Read32: expected 0x789ABCDE, got %#08x", v)
	}
	if !s.ReadBool() {
		t.Errorf("ReadBool: expected true")
	}
	p := make([]byte, 2)
	s.ReadData(p)
	if diff := cmp.Diff([]byte{0xF0, 0x0D}, p); diff != "" {
		t.Errorf("ReadData (-want +got):\n%s", diff)
	}
	if s.Remaining() != 0 || s.Err() != nil {
		t.Errorf("expected state to be fully consumed without error, %d remaining, err %v", s.Remaining(), s.Err())
	}

	t.Run("short read", func(t *testing.T) {
		if v := s.Read16(); v != 0 {
			t.Errorf("expected 0 on short read, got %#04x", v)
		}
		if !errors.Is(s.Err(), ErrShortState) {
			t.Errorf("expected ErrShortState, got %v", s.Err())
		}

		s.ResetPosition()
		if s.Err() != nil {
			t.Errorf("expected ResetPosition to clear the error")
		}
		if v := s.Read8(); v != 0x12 {
			t.Errorf("expected 0x12 after reset, got %#02x", v)
		}
	})
	t.Run("error latches", func(t *testing.T) {
		s := StateFromBytes([]byte{0x01})
		s.Read16()
		if v := s.Read8(); v != 0 {
			t.Errorf("expected reads after an error to return 0, got %#02x", v)
		}
	})
}
