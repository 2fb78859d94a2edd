/*
Package impass hides a short secret after the end of a PNG image, optionally behind a password.

# How it works:

Encoding digests the password (if any) with passhash, turns the digest into a bcrypt verification token, scrambles the secret with the configured keys, and frames everything as a container.Payload.
The payload is spliced in right after the image's IEND marker, so the image still renders normally.

Decoding parses the payload that follows the IEND marker.
If it's password protected, a Verifier takes a single candidate password (from the caller, or from a PasswordSource when none was given) and checks it against the stored token before the secret is unscrambled.
There are no retries, a wrong password ends the decode with ErrPasswordMismatch.

# General guidelines:
  - Decoding requires the same keys.CipherKeys that were used to encode. They aren't stored in the image.
  - Secrets are limited to MaxSecretLen bytes, since the scrambled form must fit in a 255 byte block.
  - An empty password means the payload isn't protected.
*/
package impass
