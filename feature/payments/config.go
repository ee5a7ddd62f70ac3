package payments

// Config holds the pipeline inputs and outputs.
type Config struct {
	// MembersPath is the member source (.csv or .xlsx).
	MembersPath string `mapstructure:"members_path" default:"data/memberInfo.csv"`
	// PaymentsPath is the payment source (.csv or .xlsx).
	PaymentsPath string `mapstructure:"payments_path" default:"data/memberPaidInfo.csv"`
	// OutputPath is where the cleaned dataset is written.
	OutputPath string `mapstructure:"output_path" default:"data/cleaned_member_payments.csv"`
	// ReportFormat selects the report rendering (text, json, yaml).
	ReportFormat string `mapstructure:"report_format" default:"text"`
}
