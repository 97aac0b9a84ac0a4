package models

import (
	"testing"
	"time"
)

func TestBillValid(t *testing.T) {
	day := 15
	badDay := 31
	date := time.Now().AddDate(0, 1, 0)

	cases := []struct {
		name string
		bill Bill
		want bool
	}{
		{"monthly with day", Bill{Type: BillMonthly, DueDay: &day}, true},
		{"monthly without day", Bill{Type: BillMonthly}, false},
		{"monthly day out of range", Bill{Type: BillMonthly, DueDay: &badDay}, false},
		{"monthly with both fields", Bill{Type: BillMonthly, DueDay: &day, DueExactDate: &date}, false},
		{"onetime with date", Bill{Type: BillOneTime, DueExactDate: &date}, true},
		{"onetime without date", Bill{Type: BillOneTime}, false},
		{"onetime with both fields", Bill{Type: BillOneTime, DueDay: &day, DueExactDate: &date}, false},
		{"unknown type", Bill{Type: "WEEKLY", DueDay: &day}, false},
	}
	for _, tc := range cases {
		if got := tc.bill.Valid(); got != tc.want {
			t.Errorf("%s: Valid() = %v, want %v", tc.name, got, tc.want)
		}
	}
}
