package secure

import (
	"log/slog"
	"regexp"
	"strings"

	"merchantcore/apperror"
	"merchantcore/inputs"
	"merchantcore/internal/sensitive"
)

// iso3166Alpha2 is the closed set of ISO 3166-1 alpha-2 country codes.
var iso3166Alpha2 = func() map[string]struct{} {
	const codes = "AD AE AF AG AI AL AM AO AQ AR AS AT AU AW AX AZ BA BB BD BE BF BG BH BI BJ BL BM BN BO BQ BR BS BT BV BW BY BZ CA CC CD CF CG CH CI CK CL CM CN CO CR CU CV CW CX CY CZ DE DJ DK DM DO DZ EC EE EG EH ER ES ET FI FJ FK FM FO FR GA GB GD GE GF GG GH GI GL GM GN GP GQ GR GS GT GU GW GY HK HM HN HR HT HU ID IE IL IM IN IO IQ IR IS IT JE JM JO JP KE KG KH KI KM KN KP KR KW KY KZ LA LB LC LI LK LR LS LT LU LV LY MA MC MD ME MF MG MH MK ML MM MN MO MP MQ MR MS MT MU MV MW MX MY MZ NA NC NE NF NG NI NL NO NP NR NU NZ OM PA PE PF PG PH PK PL PM PN PR PS PT PW PY QA RE RO RS RU RW SA SB SC SD SE SG SH SI SJ SK SL SM SN SO SR SS ST SV SX SY SZ TC TD TF TG TH TJ TK TL TM TN TO TR TT TV TW TZ UA UG UM US UY UZ VA VC VE VG VI VN VU WF WS YE YT ZA ZM ZW"
	m := make(map[string]struct{}, 250)
	for _, c := range strings.Fields(codes) {
		m[c] = struct{}{}
	}
	return m
}()

// CountryCode is an ISO 3166-1 alpha-2 country code. A public
// classifier: formatted as-is.
type CountryCode struct{ value string }

func NewCountryCode(raw string) (CountryCode, error) {
	v := strings.ToUpper(strings.TrimSpace(raw))
	if _, ok := iso3166Alpha2[v]; !ok {
		return CountryCode{}, apperror.InvalidInput("unknown ISO 3166-1 country code")
	}
	return CountryCode{value: v}, nil
}

func (c CountryCode) Value() string        { return c.value }
func (c CountryCode) String() string       { return c.value }
func (c CountryCode) LogValue() slog.Value { return slog.StringValue(c.value) }

var regionCodeShape = regexp.MustCompile(`^[A-Z]{2}-[A-Z0-9]{1,3}$`)

// RegionCode is an ISO 3166-2 subdivision code such as "US-CA".
type RegionCode struct{ value string }

func NewRegionCode(raw string) (RegionCode, error) {
	v := strings.ToUpper(strings.TrimSpace(raw))
	if !regionCodeShape.MatchString(v) {
		return RegionCode{}, apperror.InvalidInput("region code must match the ISO 3166-2 shape CC-SSS")
	}
	if _, ok := iso3166Alpha2[v[:2]]; !ok {
		return RegionCode{}, apperror.InvalidInput("region code names an unknown country")
	}
	return RegionCode{value: v}, nil
}

func (r RegionCode) Value() string        { return r.value }
func (r RegionCode) String() string       { return r.value }
func (r RegionCode) LogValue() slog.Value { return slog.StringValue(r.value) }

// postalShapes validates postal codes for countries with a fixed shape.
// Countries outside the map fall back to the generic 3..=12 rule.
var postalShapes = map[string]*regexp.Regexp{
	"US": regexp.MustCompile(`^\d{5}(-\d{4})?$`),
	"CA": regexp.MustCompile(`^[A-Z]\d[A-Z] ?\d[A-Z]\d$`),
	"GB": regexp.MustCompile(`^[A-Z]{1,2}\d[A-Z0-9]? ?\d[A-Z]{2}$`),
	"DE": regexp.MustCompile(`^\d{5}$`),
	"FR": regexp.MustCompile(`^\d{5}$`),
	"NL": regexp.MustCompile(`^\d{4} ?[A-Z]{2}$`),
	"JP": regexp.MustCompile(`^\d{3}-?\d{4}$`),
	"BR": regexp.MustCompile(`^\d{5}-?\d{3}$`),
	"MX": regexp.MustCompile(`^\d{5}$`),
	"IN": regexp.MustCompile(`^\d{6}$`),
	"AU": regexp.MustCompile(`^\d{4}$`),
}

// PostalCode is a postal code, checked against the country's shape when
// the country is known to the core.
type PostalCode struct{ value string }

func NewPostalCode(raw string, country CountryCode) (PostalCode, error) {
	v := strings.ToUpper(trimCollapse(raw))
	if len(v) < 3 || len(v) > 12 {
		return PostalCode{}, apperror.InvalidInput("postal code must be 3 to 12 characters")
	}
	if shape, ok := postalShapes[country.Value()]; ok && !shape.MatchString(v) {
		return PostalCode{}, apperror.InvalidInput("postal code does not match the shape for %s", country.Value())
	}
	return PostalCode{value: v}, nil
}

func (p PostalCode) Value() string        { return p.value }
func (p PostalCode) String() string       { return sensitive.MaskTail(p.value) }
func (p PostalCode) LogValue() slog.Value { return slog.StringValue(p.String()) }

// Address is a validated postal address.
type Address struct {
	Country    CountryCode
	City       City
	Line       StreetAddress
	PostalCode *PostalCode
	Region     *RegionCode
}

// NewAddress validates an address input. PostalCode and Region are
// optional; when the postal code is present it is checked against the
// country's shape.
func NewAddress(in inputs.Address) (Address, error) {
	country, err := NewCountryCode(in.Country)
	if err != nil {
		return Address{}, err
	}
	city, err := NewCity(in.City)
	if err != nil {
		return Address{}, err
	}
	line, err := NewStreetAddress(in.Line)
	if err != nil {
		return Address{}, err
	}
	addr := Address{Country: country, City: city, Line: line}
	if in.PostalCode != "" {
		pc, err := NewPostalCode(in.PostalCode, country)
		if err != nil {
			return Address{}, err
		}
		addr.PostalCode = &pc
	}
	if in.Region != "" {
		rc, err := NewRegionCode(in.Region)
		if err != nil {
			return Address{}, err
		}
		addr.Region = &rc
	}
	return addr, nil
}
