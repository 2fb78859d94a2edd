/*
Package scramble provides the reversible, keyed byte transform used to hide secrets in impass payloads.

Note that this is NOT encryption, since it is easily reversible by anyone holding the keys.
This falls squarely under the obfuscation category, and it is NOT recommended for security critical use.

# How it works:

The secret is reversed, then every byte is passed through a keyed transform that depends on the byte's position (the "pepper"), the SHIFT key folded into 1-31, and the GODNUM and XOR keys.
Only the low byte of the transform is kept, and it's XOR'ed with a whitening byte derived from SHIFT.
The resulting bytes are then encoded with standard, padded base64 so they can be embedded as plain bytes.

Decoding runs the same steps backwards: base64 decode, undo the whitening, apply the inverse transform, and reverse.

# Important note:

The transform is only invertible when the folded shift is at least 8, since smaller shifts leak into the low byte that is kept.
Keys like that are rejected with ErrDegenerateShift rather than producing a payload that can't be decoded.
GenerateKeys never produces them.
*/
package scramble
