// Package masking replaces sensitive values (API keys, emails, credentials)
// with fixed placeholders before they reach the application log.
//
// Masking only ever applies to loggable string representations. Nothing in
// this package is used on the values actually sent over the network.
//
// Two entry points exist:
//   - [Value] for named fields (headers, request parameters);
//   - [Masker.Body] (and the package-level [Body]) for free-form reply bodies,
//     returning a typed [Result] instead of silently falling back to the
//     unmasked content on failure.
package masking
