// Package contact implements the contact-form relay: a submission posted
// as JSON is validated, composed into a mail message addressed to the
// operator (Reply-To set to the visitor), and handed to the configured
// mail transport. The request lifecycle is strictly linear (validate,
// check configuration, verify the session, send, respond) and every
// failure terminates the request with a categorized error response.
package contact
