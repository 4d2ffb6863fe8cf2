/* Apache v2 license
*  Copyright (C) <2019> Intel Corporation
*
*  SPDX-License-Identifier: Apache-2.0
 */

package slices

// Map returns a new slice holding f applied to every element of vs
func Map(vs []string, f func(string) string) []string {
	vsm := make([]string, len(vs))
	for i, v := range vs {
		vsm[i] = f(v)
	}
	return vsm
}

// RemoveDuplicates removes duplicates, keeping the first occurrence of each
// value in its original position. A nil input stays nil.
func RemoveDuplicates(vs []string) []string {
	if vs == nil {
		return nil
	}
	seen := make(map[string]bool, len(vs))
	noDups := make([]string, 0, len(vs))
	for _, v := range vs {
		if seen[v] {
			continue
		}
		seen[v] = true
		noDups = append(noDups, v)
	}
	return noDups
}
