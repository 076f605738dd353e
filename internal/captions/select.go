package captions

import "strings"

// SelectTrack returns the index of the preferred track. Languages are tried
// in order, and within one language a manually created track wins over a
// generated one; a later preference never outranks an earlier one even when
// the earlier match is generated. Matching on the language code is
// case-insensitive. Returns a KindNotFound error when no track matches.
func SelectTrack(tracks []Track, languages []string) (int, error) {
	for _, lang := range languages {
		manual, generated := -1, -1
		for i, track := range tracks {
			if !strings.EqualFold(track.LanguageCode, lang) {
				continue
			}
			if track.IsGenerated {
				if generated == -1 {
					generated = i
				}
			} else if manual == -1 {
				manual = i
			}
		}
		if manual != -1 {
			return manual, nil
		}
		if generated != -1 {
			return generated, nil
		}
	}
	return -1, NewError(KindNotFound, "no transcript found for any of the requested language codes: %v", languages)
}
