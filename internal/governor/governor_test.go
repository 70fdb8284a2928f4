package governor

import (
	"errors"
	"testing"
)

func TestAllKeepsDeclarationOrder(t *testing.T) {
	want := []string{"conservative", "ondemand", "userspace", "powersave", "performance", "schedutil"}
	got := All()
	if len(got) != len(want) {
		t.Fatalf("governor count expected %d, got %d", len(want), len(got))
	}
	for i, name := range want {
		if got[i].String() != name {
			t.Fatalf("governor[%d] expected %s, got %s", i, name, got[i])
		}
	}
}

func TestAllReturnsCopy(t *testing.T) {
	first := All()
	first[0] = "mutated"
	if All()[0] != Conservative {
		t.Fatalf("All() must not expose the internal table")
	}
}

func TestParse(t *testing.T) {
	cases := []struct {
		name    string
		value   string
		want    Governor
		wantErr bool
	}{
		{name: "performance", value: "performance", want: Performance},
		{name: "schedutil", value: "schedutil", want: Schedutil},
		{name: "unknown", value: "badvalue", wantErr: true},
		{name: "empty", value: "", wantErr: true},
		{name: "case sensitive", value: "Performance", wantErr: true},
		{name: "no trimming", value: "powersave\n", wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse(tc.value)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidGovernor) {
					t.Fatalf("expected ErrInvalidGovernor, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}
