package utils

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Staff type service dates into booking forms in one of these shapes.
// Order matters: the first pattern that matches decides.
var serviceDatePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d{1,2})/(\d{1,2})`),         // 9/8
	regexp.MustCompile(`(\d{1,2})월\s*(\d{1,2})일?`), // 9월8일, 9월 8일
	regexp.MustCompile(`(\d{1,2})-(\d{1,2})`),         // 9-8
}

var (
	personCountRe   = regexp.MustCompile(`(\d+)\s*명`)
	firstIntegerRe  = regexp.MustCompile(`\d+`)
	roomNumberRe    = regexp.MustCompile(`(\d+)\.`)
	roomLabelRe     = regexp.MustCompile(`\d+\.\s*([A-Za-z가-힣]+)`)
	petOnlyMarkers  = []string{"반려견 동반 (only stay)", "only stay"}
	wellnessMarker  = "Wellness Retreat"
	wellnessRoomTag = "wellness retreat"
)

// ServiceDate is a month/day pair parsed out of free text
type ServiceDate struct {
	Month int
	Day   int
	Token string
}

// ParseServiceDate extracts the first date token from a form value
func ParseServiceDate(value string) (ServiceDate, bool) {
	for _, pattern := range serviceDatePatterns {
		match := pattern.FindStringSubmatch(value)
		if match == nil {
			continue
		}
		month, err := strconv.Atoi(match[1])
		if err != nil {
			return ServiceDate{}, false
		}
		day, err := strconv.Atoi(match[2])
		if err != nil {
			return ServiceDate{}, false
		}
		return ServiceDate{Month: month, Day: day, Token: match[0]}, true
	}
	return ServiceDate{}, false
}

// MatchesServiceDate reports whether the date written in value is the day after target.
// A form stored on a stay's own day-record describes the service delivered the next morning.
func MatchesServiceDate(value string, target time.Time) bool {
	date, ok := ParseServiceDate(value)
	if !ok {
		return false
	}
	next := AddDays(target, 1)
	return date.Month == int(next.Month()) && date.Day == next.Day()
}

// ParsePersonCount extracts the head count from a form value such as "9/8 2명" or "2명, 9/8".
// A number followed by 명 wins; otherwise the first integer outside the date token is used.
func ParsePersonCount(value string) (int, bool) {
	if match := personCountRe.FindStringSubmatch(value); match != nil {
		if n, err := strconv.Atoi(match[1]); err == nil {
			return n, true
		}
	}

	rest := value
	if date, ok := ParseServiceDate(value); ok {
		rest = strings.Replace(value, date.Token, " ", 1)
	}

	match := firstIntegerRe.FindString(rest)
	if match == "" {
		return 0, false
	}
	n, err := strconv.Atoi(match)
	if err != nil {
		return 0, false
	}
	return n, true
}

// RoomNumberFromName maps a PMS room type name to its room number.
// "에가톳캐빈- 3. 봄비" -> "3", "... Wellness Retreat" -> "WR", pet-only stay -> "PET".
// Names that carry no number return "".
func RoomNumberFromName(name string) string {
	if strings.Contains(name, wellnessMarker) {
		return RoomWellnessRetreat
	}
	if match := roomNumberRe.FindStringSubmatch(name); match != nil {
		return match[1]
	}
	for _, marker := range petOnlyMarkers {
		if strings.Contains(name, marker) {
			return RoomPetOnly
		}
	}
	return ""
}

// RoomLabelFromName returns the short lowercase label of a room type, "에가톳캐빈- 1. Camino" -> "camino"
func RoomLabelFromName(name string) string {
	if strings.Contains(name, wellnessMarker) {
		return wellnessRoomTag
	}
	if match := roomLabelRe.FindStringSubmatch(name); match != nil {
		return strings.ToLower(match[1])
	}
	return name
}

// IsNumericRoom reports whether a room number takes part in cleaning analysis
func IsNumericRoom(roomNumber string) bool {
	if roomNumber == "" {
		return false
	}
	_, err := strconv.Atoi(roomNumber)
	return err == nil
}

// ShortFormTitle shortens custom form titles for display
func ShortFormTitle(title string) string {
	switch {
	case strings.Contains(title, TitleHeadcount):
		return "인원"
	case strings.Contains(title, TitleBreakfast):
		return TitleBreakfast
	case strings.Contains(title, TitleYoga):
		return TitleYoga
	case strings.Contains(title, TitleHotTub):
		return TitleHotTub
	}
	return title
}

// DigitsOnly strips everything but ASCII digits, "010-1234-5678" -> "01012345678"
func DigitsOnly(phone string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, phone)
}
