// Command mex computes the smallest non-negative integer missing from a list
// and benchmarks the hash-based algorithm against the sort-based one.
package main

func main() {
	execute()
}
