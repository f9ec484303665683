// Package cryptoform provides a Go client SDK for composing and sending
// PGP-encrypted mail through a CryptoForm relay.
//
// A Workflow walks a message from recipient selection through fingerprint
// verification, staging (compose + encrypt) and relay submission, as an
// explicit state machine. Recipients come from an identity directory; the
// directory-reported fingerprint is cross-checked against the fingerprint
// the encryption engine computes from the recipient's public key, so a
// tampered directory entry is surfaced before anything is encrypted.
//
// Basic usage:
//
//	client, err := cryptoform.New(cryptoform.WithBaseURL("https://api.451labs.org"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	wf := client.NewWorkflow()
//	if err := wf.LoadDirectory(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
//	wf.SelectRecipient(ctx, "AAAA BBBB")
//	// ... wait for wf.State() == cryptoform.StateVerified, inspect wf.Verdict()
//
//	wf.SetSender("Bob", "bob@x.com")
//	wf.SetSubject("Hi")
//	wf.SetBody("Hello")
//
//	wf.Stage(ctx)
//	// ... wait for wf.State() == cryptoform.StateReadyToSend
//
//	if err := wf.Send(ctx); err != nil {
//	    log.Fatal(err)
//	}
package cryptoform
