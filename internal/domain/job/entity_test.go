package job

import "testing"

func f(v float64) *float64 { return &v }

func TestSalaryDisplay(t *testing.T) {
	cases := []struct {
		name string
		j    Job
		want string
	}{
		{
			name: "range yearly",
			j:    Job{SalaryMin: f(120000), SalaryMax: f(150000), SalaryPeriod: SalaryYearly},
			want: "$120,000 - $150,000 Per Year",
		},
		{
			name: "min only hourly",
			j:    Job{SalaryMin: f(45), SalaryPeriod: SalaryHourly},
			want: "$45+ Per Hour",
		},
		{
			name: "monthly range",
			j:    Job{SalaryMin: f(8000), SalaryMax: f(9500), SalaryPeriod: SalaryMonthly},
			want: "$8,000 - $9,500 Per Month",
		},
		{
			name: "unspecified",
			j:    Job{},
			want: "Salary not specified",
		},
		{
			name: "max only is unspecified",
			j:    Job{SalaryMax: f(90000)},
			want: "Salary not specified",
		},
	}

	for _, tc := range cases {
		if got := tc.j.SalaryDisplay(); got != tc.want {
			t.Errorf("%s: SalaryDisplay() = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestFormatAmount(t *testing.T) {
	cases := map[float64]string{
		0:       "0",
		999:     "999",
		1000:    "1,000",
		120000:  "120,000",
		1234567: "1,234,567",
	}
	for in, want := range cases {
		if got := formatAmount(in); got != want {
			t.Errorf("formatAmount(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestLocationDisplay(t *testing.T) {
	j := Job{City: "Austin", State: "TX", Country: "USA"}
	if got := j.LocationDisplay(); got != "Austin, TX, USA" {
		t.Fatalf("LocationDisplay() = %q", got)
	}
}
