// Package payments implements the member payment reconciliation feature.
//
// It wires the record loader, the core reconcile engine, the persistence sinks
// and the reporter into a single pipeline:
//
//  1. Load members and payments (CSV or XLSX).
//  2. Reconcile them into valid, invalid and cleaned records.
//  3. Persist the cleaned dataset (CSV, plus optional database and object storage).
//  4. Summarize total paid and highest paid member.
//
// # Components
//
//   - Service: Orchestrates a run, from files (Run) or from streams (ReconcileStreams).
//   - Handler: Exposes the pipeline over HTTP for uploaded CSV files.
//   - Feature: Registers the handler with the application loader.
//
// # HTTP Endpoints
//
//   - POST /payments/reconcile : multipart upload of "members" and "payments" CSV files.
package payments
