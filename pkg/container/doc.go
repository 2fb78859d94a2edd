/*
Package container frames the bytes that impass appends after a PNG image.

# Format:

	byte 0:            has_password (0|1)
	if has_password=1:
	  byte 1:          verify_len (0..255)
	  bytes 2..2+L:    verify_token (L = verify_len), 1 byte/char
	then:
	  byte N:           secret_len (0..255)
	  bytes N+1..N+1+M: encoded_secret (M = secret_len)

There is no magic number, trailing length, or checksum.
A reader consumes exactly the declared lengths and ignores anything after them.

The codec doesn't know what its blocks mean, it never calls the cipher or the password hasher.
*/
package container
