package password

import "testing"

func TestAcceptRejectsShortPassword(t *testing.T) {
	if err := Accept([]byte("Ab1!"), false); err == nil {
		t.Fatal("expected rejection for short password")
	}
}

func TestAcceptRejectsMissingClass(t *testing.T) {
	if err := Accept([]byte("alllowercase1"), false); err == nil {
		t.Fatal("expected rejection for password missing an uppercase/special character")
	}
}

func TestAcceptAllowsStrongPassword(t *testing.T) {
	if err := Accept([]byte("Str0ng!Passw0rd"), false); err != nil {
		t.Fatalf("expected acceptance, got %v", err)
	}
}

func TestAcceptWithAllowWeakBypassesPolicy(t *testing.T) {
	if err := Accept([]byte("x"), true); err != nil {
		t.Fatalf("allowWeak must bypass policy, got %v", err)
	}
}

func TestScoreNeverErrors(t *testing.T) {
	report := Score([]byte("correcthorsebatterystaple"))
	if report.Score < 0 || report.Score > 4 {
		t.Fatalf("score %d out of [0,4]", report.Score)
	}
}
