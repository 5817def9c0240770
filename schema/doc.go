// Package schema turns declaration surfaces into the field declarations and
// container options the layout planner consumes.
//
// Two surfaces are provided. Struct tags:
//
//	type Packet struct {
//		Ver      uint8 `bits:"3"`
//		Kind     uint8 `bits:"8,skip=1"`
//		Priority Prio  `bits:"8"`
//		Delta    int16 `bits:"12"`
//	}
//
// and YAML documents:
//
//	container:
//	  int: u32
//	  order: lsb
//	fields:
//	  - name: ver
//	    type: u8
//	    bits: 3
//	  - name: kind
//	    type: u8
//	    skip: 1
//
// Both reduce to the same semantic output: an ordered list of
// layout.FieldDecl plus a Container. The surfaces never place bits
// themselves; all placement and validation belongs to the planner.
package schema
