package assess

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestResultJSONRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		res  Result
		want string
	}{
		{
			name: "error path serializes null",
			res: Result{
				Safe:    false,
				Message: "missing credentials: GEMINI_API_KEY is not set",
			},
			want: `{"safe":false,"detected_food":null,"message":"missing credentials: GEMINI_API_KEY is not set","details":""}`,
		},
		{
			name: "fallback path serializes category string",
			res: Result{
				Safe:         false,
				DetectedFood: CategoryID("raw_fish"),
				Message:      "生魚が含まれており、妊娠中は避けることをお勧めします",
				Details:      "生魚にはリステリア菌や寄生虫のリスクがあります。詳しくは医師にご相談ください",
			},
			want: `{"safe":false,"detected_food":"raw_fish","message":"生魚が含まれており、妊娠中は避けることをお勧めします","details":"生魚にはリステリア菌や寄生虫のリスクがあります。詳しくは医師にご相談ください"}`,
		},
		{
			name: "model path serializes name list",
			res: Result{
				Safe:         false,
				DetectedFood: FoodList([]string{"サーモン", "生ハム"}),
				Message:      MessageRisk,
				Details:      "サーモン: 寄生虫のリスク\n生ハム: リステリア菌のリスク",
			},
			want: `{"safe":false,"detected_food":["サーモン","生ハム"],"message":"リスクがある食品が含まれています。詳細をご確認ください。","details":"サーモン: 寄生虫のリスク\n生ハム: リステリア菌のリスク"}`,
		},
		{
			name: "safe model path serializes empty list",
			res: Result{
				Safe:         true,
				DetectedFood: FoodList(nil),
				Message:      MessageSafe,
			},
			want: `{"safe":true,"detected_food":[],"message":"この食事は妊娠中でも安心してお召し上がりいただけます","details":""}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := json.Marshal(tt.res)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			if string(b) != tt.want {
				t.Errorf("marshal = %s, want %s", b, tt.want)
			}

			var back Result
			if err := json.Unmarshal(b, &back); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}

			// FailureKind is internal and not part of the wire shape.
			expect := tt.res
			expect.FailureKind = ""
			if expect.DetectedFood != nil && expect.DetectedFood.List && expect.DetectedFood.Foods == nil {
				expect.DetectedFood = FoodList([]string{})
			}
			if !reflect.DeepEqual(back, expect) {
				t.Errorf("round trip = %+v, want %+v", back, expect)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	f := &Failure{Kind: FailureTransport, Message: "upstream exploded"}
	res, err := Normalize(Result{}, f)
	if err != nil {
		t.Fatalf("Normalize(failure) err = %v", err)
	}
	if res.Safe || res.DetectedFood != nil || res.Message != "upstream exploded" {
		t.Errorf("Normalize(failure) = %+v", res)
	}
	if res.FailureKind != FailureTransport {
		t.Errorf("FailureKind = %q, want %q", res.FailureKind, FailureTransport)
	}

	plain := json.Unmarshal([]byte("{"), &struct{}{})
	if _, err := Normalize(Result{}, plain); err == nil {
		t.Error("Normalize must pass unexpected errors through")
	}

	ok := Result{Safe: true, DetectedFood: FoodList(nil), Message: MessageSafe}
	res, err = Normalize(ok, nil)
	if err != nil || !reflect.DeepEqual(res, ok) {
		t.Errorf("Normalize(ok) = (%+v, %v)", res, err)
	}
}
