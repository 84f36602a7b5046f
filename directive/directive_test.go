package directive

import "testing"

func TestParse_Operands(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		wantOp  string
		wantRaw string
		wantOp2 string
	}{
		{"bare op", "op1", "op1", "op1", ""},
		{"bare operand", "op1 op2", "op1", "op1", "op2"},
		{"quoted operand", "op1 'op2'", "op1", "op1", "op2"},
		{"quoted with space", "op1 'op 2'", "op1", "op1", "op 2"},
		{"suffix discarded", "op1 op2 op3", "op1", "op1", "op2"},
		{"quoted then suffix", "op1 'op2' op3", "op1", "op1", "op2"},
		{"dashed op", "op-1", "op_1", "op-1", ""},
		{"dashed op with operand", "op-1 op2", "op_1", "op-1", "op2"},
		{"dashed operand preserved", "op-1 op-2", "op_1", "op-1", "op-2"},
		{"underscores preserved", "op_1 op_2", "op_1", "op_1", "op_2"},
		{"use directive", "use SECTION-A", "use", "use", "SECTION-A"},
		{
			"quoted wins over bare token",
			"envvar-prepend PATH 'A'",
			"envvar_prepend", "envvar-prepend", "A",
		},
		{
			"disambiguation suffix discarded",
			"envvar-prepend PATH extra-suffix",
			"envvar_prepend", "envvar-prepend", "PATH",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, ok := Parse(tt.key, "value")
			if !ok {
				t.Fatalf("Parse(%q) did not match", tt.key)
			}

			if d.Op != tt.wantOp {
				t.Errorf("Op = %q, want %q", d.Op, tt.wantOp)
			}

			if d.Raw != tt.wantRaw {
				t.Errorf("Raw = %q, want %q", d.Raw, tt.wantRaw)
			}

			if d.Operand != tt.wantOp2 {
				t.Errorf("Operand = %q, want %q", d.Operand, tt.wantOp2)
			}
		})
	}
}

func TestParse_Rejected(t *testing.T) {
	tests := []struct {
		name string
		key  string
	}{
		{"empty key", ""},
		{"punctuation only", "** comment **"},
		{"leading quote", "'op1'"},
		{"leading dot", ".op1"},
		{"lookalike prefix", "op=1 op2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if d, ok := Parse(tt.key, ""); ok {
				t.Errorf("Parse(%q) matched as %+v, want no directive", tt.key, d)
			}
		})
	}
}

func TestParse_RetainsRawEntry(t *testing.T) {
	d, ok := Parse("envvar-set GREETING", "hello world")
	if !ok {
		t.Fatal("expected directive")
	}

	if d.Key != "envvar-set GREETING" || d.Value != "hello world" {
		t.Errorf("raw entry = (%q, %q), want original key/value", d.Key, d.Value)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct{ in, want string }{
		{"use", "use"},
		{"envvar-prepend", "envvar_prepend"},
		{" spaced ", "spaced"},
		{"a-b-c", "a_b_c"},
	}

	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
