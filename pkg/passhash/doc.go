/*
Package passhash provides the password bookkeeping used to protect impass payloads.

# How it works:

A password is first collapsed into a 128-bit number with a Jenkins one-at-a-time hash, and that number's decimal string is the digest.
The digest, never the password, is handed to an adaptive hash Primitive (bcrypt by default) to produce a verification token.
The token is stored in the payload, and a candidate password is checked later by digesting it the same way and asking the Primitive to verify it against the token.

Nothing in this package can recover a password or a digest from a token.

# General guidelines:
  - Passwords are limited to 11 ASCII characters. This is a format limit, not a performance optimization, and both violations are reported with ErrPasswordFormat.
  - The digest is only used for verification. Secrets are never encrypted with it.
  - Bcrypt uses DefaultCost unless SetCost is given. Tokens made with any cost verify with any Bcrypt, since bcrypt stores the cost in the token.
*/
package passhash
