package assess

import "encoding/json"

// User-facing verdict messages, kept in the language of the catalog texts.
const (
	MessageSafe = "この食事は妊娠中でも安心してお召し上がりいただけます"
	MessageRisk = "リスクがある食品が含まれています。詳細をご確認ください。"
)

// FoodItem is one food the vision model enumerated in its reply.
type FoodItem struct {
	Name    string `json:"name"`
	Risk    bool   `json:"risk"`
	Details string `json:"details"`
}

// Result is the assessment returned for one image.
//
// DetectedFood is nil when the assessment could not be performed, a single
// category id in the fallback path, or the list of flagged food names in the
// model-backed path. Safe is true only when no hazard was detected and
// Details is empty.
type Result struct {
	Safe         bool          `json:"safe"`
	DetectedFood *DetectedFood `json:"detected_food"`
	Message      string        `json:"message"`
	Details      string        `json:"details"`

	// FailureKind classifies the degraded paths for callers and tests.
	// Empty on a successful assessment; never serialized.
	FailureKind FailureKind `json:"-"`
}

// DetectedFood is either a single category id or a list of food names. It
// serializes as a JSON string or array accordingly; a nil *DetectedFood
// serializes as null.
type DetectedFood struct {
	Category string
	Foods    []string
	List     bool
}

// CategoryID wraps a single category id (fallback path).
func CategoryID(id string) *DetectedFood {
	return &DetectedFood{Category: id}
}

// FoodList wraps an ordered list of flagged food names (model path). The
// list form is kept even when empty so a safe verdict serializes as [].
func FoodList(names []string) *DetectedFood {
	return &DetectedFood{Foods: names, List: true}
}

func (d DetectedFood) MarshalJSON() ([]byte, error) {
	if d.List {
		foods := d.Foods
		if foods == nil {
			foods = []string{}
		}
		return json.Marshal(foods)
	}
	return json.Marshal(d.Category)
}

func (d *DetectedFood) UnmarshalJSON(b []byte) error {
	var names []string
	if err := json.Unmarshal(b, &names); err == nil {
		*d = DetectedFood{Foods: names, List: true}
		if d.Foods == nil {
			d.Foods = []string{}
		}
		return nil
	}
	var id string
	if err := json.Unmarshal(b, &id); err != nil {
		return err
	}
	*d = DetectedFood{Category: id}
	return nil
}
