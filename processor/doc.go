/*
Package processor loads type hierarchy specifications from YAML files.

A hierarchy file declares the types of a resolution hierarchy and the
discriminator mappings between them, so that applications can configure
a Resolver from data instead of code:

	types:
	  - name: Event
	    discriminator: Type
	  - name: MatchEvent
	    parent: Event
	    discriminator: Sub
	    allowSelf: true
	  - name: SinglesMatchEvent
	    parent: MatchEvent
	  - name: RatingEvent
	    parent: Event

	hierarchies:
	  - parent: Event
	    children:
	      match: MatchEvent
	      rating: RatingEvent
	  - parent: MatchEvent
	    children:
	      singles: SinglesMatchEvent

Load the file and apply it to a resolver:

	spec, err := processor.Load("hierarchy.yaml")
	if err != nil {
	    return err
	}
	if err := spec.Apply(resolver); err != nil {
	    return err
	}

Applying a spec declares every listed type and registers every hierarchy
entry in one atomic call, so a bad file never leaves the resolver half
configured. Go type bindings are not part of the file format; bind
concrete types in code after applying the spec.
*/
package processor
