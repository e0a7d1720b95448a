// SPDX-License-Identifier: MPL-2.0

// Command calstage stages application-object exports: it inventories the
// objects inside <CODE>.txt export files, splits them into per-object
// staging trees and joins staged objects back into MRG2<CODE>.txt files.
package main

func main() {
	Execute()
}
