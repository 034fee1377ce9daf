package terminal

import "time"

// Style tags understood by the presentation layers.
const (
	StyleCommand  = "command"
	StyleMuted    = "muted"
	StyleSuccess  = "success"
	StyleAdded    = "added"
	StyleAccent   = "accent"
	StyleWarn     = "warn"
	StyleInfo     = "info"
	StyleGreeting = "greeting"
	StyleStatus   = "status"
)

// CloudProfile is the boot sequence shown in the portfolio hero section.
func CloudProfile() Script {
	return Script{
		Preamble: []Step{
			{Kind: Input, Text: "init cloud_profile --user=francisco", Style: StyleCommand, TypeDelay: 30 * time.Millisecond},
			{Kind: Output, Text: "Loading user configuration...", Style: StyleMuted},
			{Kind: Output, Text: "[OK] AWS_ACCESS_KEY_ID loaded", Style: StyleSuccess},
			{Kind: Output, Text: "[OK] Region: us-east-1 configured", Style: StyleSuccess},
			{Kind: Input, Text: "terraform plan", Style: StyleCommand, TypeDelay: 50 * time.Millisecond},
			{Kind: Output, Text: "Acquiring state lock...", Style: StyleMuted},
			{Kind: Output, Text: "  + module.portfolio_infrastructure", Style: StyleAdded},
			{Kind: Output, Text: "Plan: 3 to add, 0 to change.", Style: StyleAccent},
		},
		Epilogue: []Step{
			{Kind: Input, Text: "./identify_visitor.sh", Style: StyleCommand, TypeDelay: 30 * time.Millisecond},
			{Kind: Output, Text: "Analyzing network traffic...", Style: StyleWarn},
			{Kind: Output, Text: "Visitor IP detected: " + Placeholder, Style: StyleInfo},
			{Kind: Output, Text: "Hi " + Placeholder + "! Welcome to my CloudOps portfolio.", Style: StyleGreeting},
			{Kind: Output, Text: "Status: ONLINE | Waiting for input...", Style: StyleStatus},
		},
	}
}
