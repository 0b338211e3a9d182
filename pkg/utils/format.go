package utils

import (
	"fmt"
	"time"
)

// monthNamesID maps month numbers to Indonesian month names
var monthNamesID = map[time.Month]string{
	time.January: "Januari", time.February: "Februari", time.March: "Maret",
	time.April: "April", time.May: "Mei", time.June: "Juni",
	time.July: "Juli", time.August: "Agustus", time.September: "September",
	time.October: "Oktober", time.November: "November", time.December: "Desember",
}

// monthAbbrevID maps month numbers to short Indonesian month names
var monthAbbrevID = map[time.Month]string{
	time.January: "Jan", time.February: "Feb", time.March: "Mar",
	time.April: "Apr", time.May: "Mei", time.June: "Jun",
	time.July: "Jul", time.August: "Agu", time.September: "Sep",
	time.October: "Okt", time.November: "Nov", time.December: "Des",
}

// MonthNameID returns the Indonesian name of a month
func MonthNameID(m time.Month) string {
	if name, ok := monthNamesID[m]; ok {
		return name
	}
	return fmt.Sprintf("%d", int(m))
}

// FormatDateID formats a time as an Indonesian short date (dd/mm/yyyy)
func FormatDateID(t time.Time) string {
	return t.Format("02/01/2006")
}

// FormatDateTimeID formats a time as an Indonesian timestamp
// (dd/mm/yyyy, hh.mm.ss), matching the id-ID display locale
func FormatDateTimeID(t time.Time) string {
	return t.Format("02/01/2006, 15.04.05")
}

// FormatDayMonthID formats a time as "dd Mon" with an Indonesian month
// abbreviation, used for trend series labels
func FormatDayMonthID(t time.Time) string {
	return fmt.Sprintf("%02d %s", t.Day(), monthAbbrevID[t.Month()])
}
