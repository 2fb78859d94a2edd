/*
Package keys resolves the three numeric parameters that drive the impass byte cipher.

# Parameters:

  - SHIFT is the bit-shift amount. Only its low byte is used, folded into the range 1-31.
  - GODNUM is a large additive constant.
  - XOR is a mask applied to every transformed byte.

Each parameter may be overridden by a named string value, usually sourced from the process environment or a .env file.
Values that are present must parse as non-negative whole numbers, values that are missing fall back to the defaults (11, 42, 69).

# Important note:

The same CipherKeys must be used to decode a secret as were used to encode it.
Keys are never written into the payload, so losing a generated .env file means losing access to the secrets encoded with it.
*/
package keys
