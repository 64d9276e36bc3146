package entities

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// ProfileIDPrefix is the membership id prefix used by the VIP profiles
// database ("NCTV-10" style ids).
const ProfileIDPrefix = "NCTV"

var profileIDPattern = regexp.MustCompile(`(?i)^NCTV-?(\d+)$`)

// VIPProfile is a customer's portal identity, distinct from the raw order
// records. Created on first successful external-auth event or by admin;
// never deleted by the portal.
type VIPProfile struct {
	ID          string    `json:"id"`
	ProfileID   string    `json:"profile_id"`
	Name        string    `json:"name"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email,omitempty"`
	Password    string    `json:"-"`
	DriveFolder string    `json:"drive_folder,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// ParseProfileNumber extracts the numeric part of a membership id
// ("NCTV-10" or "nctv10" -> 10).
func ParseProfileNumber(profileID string) (int64, bool) {
	m := profileIDPattern.FindStringSubmatch(profileID)
	if m == nil {
		return 0, false
	}
	n, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// FormatProfileID renders the canonical membership id for a profile number.
func FormatProfileID(number int64) string {
	return fmt.Sprintf("%s-%d", ProfileIDPrefix, number)
}
