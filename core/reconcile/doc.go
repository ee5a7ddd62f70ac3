// Package reconcile cross-checks a payment set against a member set and
// produces a cleaned, merged dataset.
//
// The engine is a pure, single-pass transformation over in-memory records:
//
// 1. Join: payments are left-joined against an index of members keyed by
//    member ID. Each member contributes an expected full name built from its
//    trimmed first and last names.
//
// 2. Validate: each joined record is checked against two rules. The identity
//    rule requires a matching member. The name-consistency rule requires the
//    payment name to be absent or equal to the expected name after trimming
//    and case-folding. Records passing both are valid; all others are invalid.
//
// 3. Transform: valid records become CleanedRecords whose FullName is the
//    payment's own name when present, or the expected name otherwise.
//
// Rejected rows are data, not errors. They are returned in Result.Invalid and
// can be grouped with Result.RejectCounts.
//
// # Usage Example
//
//	result := reconcile.Reconcile(members, payments)
//	for _, row := range result.Cleaned {
//	    fmt.Println(row.MemberID, row.FullName, row.PaidAmount)
//	}
package reconcile
