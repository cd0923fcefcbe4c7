package model

// Province is static reference data: a two-letter code plus display name.
type Province struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Provinces is the fixed list of the 13 Canadian provinces and territories.
var Provinces = []Province{
	{Code: "ON", Name: "Ontario"},
	{Code: "QC", Name: "Quebec"},
	{Code: "BC", Name: "British Columbia"},
	{Code: "AB", Name: "Alberta"},
	{Code: "MB", Name: "Manitoba"},
	{Code: "SK", Name: "Saskatchewan"},
	{Code: "NS", Name: "Nova Scotia"},
	{Code: "NB", Name: "New Brunswick"},
	{Code: "NL", Name: "Newfoundland and Labrador"},
	{Code: "PE", Name: "Prince Edward Island"},
	{Code: "NT", Name: "Northwest Territories"},
	{Code: "NU", Name: "Nunavut"},
	{Code: "YT", Name: "Yukon"},
}

// ValidProvince reports whether code names one of the 13 known provinces.
func ValidProvince(code string) bool {
	for _, p := range Provinces {
		if p.Code == code {
			return true
		}
	}
	return false
}

// ProvinceName returns the display name for a code, or the code itself when
// unknown.
func ProvinceName(code string) string {
	for _, p := range Provinces {
		if p.Code == code {
			return p.Name
		}
	}
	return code
}
