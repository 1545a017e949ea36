package cmd

import (
	"os"
	"testing"

	"github.com/google/subcommands"
)

func TestFmtCmd(t *testing.T) {
	withRules(t, "")
	dir := t.TempDir()

	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{
			name: "patterns.csv",
			input: `#EXBASEPATTERNSET
HAT,NAME,UNIT,TIME,SUBJECT
# sales in yen
,Sales,JPY,,
^,Cash,,,

*,Sales,JPY,*,*
`,
			want: "#ExBasePatternSet\nhat,name,unit,time,subject\n*,Sales,JPY,*,*\nHAT,Cash,*,*,*\n",
		},
		{
			name:  "shares.csv",
			input: "#ExBaseRatioTable,shares\nhat,name,unit,time,subject,ratio\n,,,,Dept1, 0.250\n",
			want:  "#ExBaseRatioTable,shares\nhat,name,unit,time,subject,ratio\n*,*,*,*,Dept1,0.25\n",
		},
		{
			name:  "journal.csv",
			input: "#ExAlgebra\nhat,name,unit,time,subject,value\n,Cash,,,,1\n,Cash,,,,2\n",
			want:  "#ExAlgebra\nhat,name,unit,time,subject,value\nNO_HAT,Cash,#,#,#,3\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeFile(t, dir, tc.name, tc.input)
			if status, _ := run(t, &fmtCmd{}, path); status != subcommands.ExitSuccess {
				t.Fatalf("fmt status = %v, want %v", status, subcommands.ExitSuccess)
			}
			got, err := os.ReadFile(path)
			if err != nil {
				t.Fatal(err)
			}
			if string(got) != tc.want {
				t.Errorf("formatted file =\n%s\nwant\n%s", got, tc.want)
			}
		})
	}
}

func TestFmtCmd_Invalid(t *testing.T) {
	withRules(t, "")
	dir := t.TempDir()
	content := "#ExBasePatternSet\nhat,name,unit,time,subject\n,Sa<les,,,\n"
	path := writeFile(t, dir, "bad.csv", content)
	unknown := writeFile(t, dir, "unknown.csv", "#Something\n")

	if status, _ := run(t, &fmtCmd{}, path, unknown); status != subcommands.ExitFailure {
		t.Errorf("fmt status = %v, want %v", status, subcommands.ExitFailure)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != content {
		t.Errorf("invalid file was rewritten:\n%s", got)
	}
}
