package source

// Column names expected in the source headers.
const (
	ColMemberID   = "memberId"
	ColFirstName  = "firstName"
	ColLastName   = "lastName"
	ColFullName   = "fullName"
	ColPaidAmount = "paidAmount"
)

// MemberColumns lists the required member source columns.
var MemberColumns = []string{ColMemberID, ColFirstName, ColLastName}

// PaymentColumns lists the required payment source columns.
var PaymentColumns = []string{ColMemberID, ColFullName, ColPaidAmount}
