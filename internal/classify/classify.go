package classify

import (
	"strings"
)

// Unknown is returned for any dimension the signature does not reveal
const Unknown = "Unknown"

// Signature holds the categorical fields derived from a client signature
type Signature struct {
	DeviceType string
	Browser    string
	OS         string
}

// Classifier derives device/browser/os categories from a raw user agent.
// Implementations must never fail; undetected dimensions fall back to Unknown.
type Classifier interface {
	Classify(userAgent string) Signature
}

// RuleClassifier classifies with ordered substring rules. Order matters:
// more specific tokens are checked before the generic ones they contain
// (Edge before Chrome, iOS before Mac).
type RuleClassifier struct{}

// NewRuleClassifier creates a RuleClassifier
func NewRuleClassifier() *RuleClassifier {
	return &RuleClassifier{}
}

// Classify derives the signature categories from a user agent string
func (c *RuleClassifier) Classify(userAgent string) Signature {
	ua := strings.ToLower(userAgent)
	return Signature{
		DeviceType: detectDevice(ua),
		Browser:    detectBrowser(ua),
		OS:         detectOS(ua),
	}
}

func detectDevice(ua string) string {
	switch {
	case containsAny(ua, "bot", "crawler", "spider", "scraper", "curl", "wget"):
		return "Bot"
	case containsAny(ua, "ipad", "tablet"):
		return "Tablet"
	case containsAny(ua, "mobile", "android", "iphone", "ipod", "blackberry", "windows phone"):
		return "Mobile"
	case containsAny(ua, "windows", "macintosh", "x11", "linux"):
		return "Desktop"
	default:
		return Unknown
	}
}

func detectBrowser(ua string) string {
	switch {
	case strings.Contains(ua, "edg/"), strings.Contains(ua, "edge"):
		return "Edge"
	case strings.Contains(ua, "opr/"), strings.Contains(ua, "opera"):
		return "Opera"
	case strings.Contains(ua, "firefox"):
		return "Firefox"
	case strings.Contains(ua, "chrome"):
		return "Chrome"
	case strings.Contains(ua, "safari"):
		return "Safari"
	default:
		return Unknown
	}
}

func detectOS(ua string) string {
	switch {
	case containsAny(ua, "iphone", "ipad", "ipod"):
		return "iOS"
	case strings.Contains(ua, "android"):
		return "Android"
	case strings.Contains(ua, "windows"):
		return "Windows"
	case containsAny(ua, "macintosh", "mac os"):
		return "macOS"
	case strings.Contains(ua, "linux"):
		return "Linux"
	default:
		return Unknown
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
