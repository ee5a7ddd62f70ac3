// Package sink persists the cleaned dataset.
//
// The CSV sink is always used by the pipeline. The database sink (gorm) and the
// storage sink (MinIO/S3) are optional and enabled through configuration.
// All sinks write the columns memberId, fullName and paidAmount in that order.
package sink
