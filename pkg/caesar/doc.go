// Package caesar implements the Caesar shift cipher and an automatic
// decryption search that recovers the key without it being supplied.
//
// # Transform
//
// Shift rotates each Latin letter by a key while preserving case; everything
// else passes through. Any integer key is accepted and reduced modulo 26, so
// Shift(t, k), Shift(t, k+26) and Shift(t, k-26) agree. Input must be 7-bit
// ASCII: a non-ASCII byte yields ErrNonASCII before anything is transformed.
//
//	ct, _ := caesar.Shift("Attack at dawn", 3) // "Dwwdfn dw gdzq"
//	pt, _ := caesar.Unshift(ct, 3)
//
// # Automatic decryption
//
// AutoDecrypt tries keys 0..25 in order and stops at the first candidate a
// Validator accepts. Two validators are provided:
//
//   - CribValidator accepts candidates containing a known substring.
//   - WordListValidator accepts candidates in which at least a threshold
//     fraction of words are found in a vocabulary (see package lexicon).
//
// Example:
//
//	res, err := caesar.AutoDecryptString(ct, frequency.English(), caesar.NewCribValidator("dawn"))
//	if errors.Is(err, caesar.ErrPlaintextInvalid) {
//		// no key produced an acceptable plaintext
//	}
//	fmt.Println(res.Key, res.Iterations, res.Plaintext) // 3 4 Attack at dawn
//
// The search is deterministic and bounded: 26 keys, each tried once. It runs
// on the calling goroutine and does not log; presentation of errors belongs to
// the caller.
package caesar
