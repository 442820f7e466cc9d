// Package model defines the field types shared by the tab builder, the
// option stores and the reference host. Developers describe fields with
// Descriptor; the Normalizer turns a descriptor list into the prepared list
// handed to the host renderer. Prepared fields form a closed set of concrete
// types (Title, SectionEnd, Input, Select, MultiSelect, Radio, Checkbox), so
// consumers switch on the type rather than probing optional keys:
//
//	for _, field := range prepared {
//		switch f := field.(type) {
//		case model.Select:
//			fmt.Println(f.ID, f.Default, f.Options.Keys())
//		case model.Checkbox:
//			fmt.Println(f.ID, f.Default == "yes")
//		}
//	}
//
// Every prepared id carries the "<slug>-" prefix; Unprefix reverses it.
package model
