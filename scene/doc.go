/*
Package scene ties gesture input, stroke generation, animation and outline
rendering together.

A Scene is driven by a host clock. On every tick the host passes the elapsed
time and its pointer; the scene samples the pointer, spawns new paints at a
fixed interval, advances all animations and removes paints once every one
of their samples has faded. Frame is then called to obtain the paths to draw.

	sc := scene.New(scene.DefaultOptions(), stroke.NewSeeded(1))
	defer sc.Close()
	for tick := range clock {
	    sc.Tick(tick.Delta, pointer)
	    draw(sc.Frame())
	}

A Scene is not safe for concurrent use. Hosts call Tick and Frame from their
update loop.

BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package scene

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'scene'
func tracer() tracing.Trace {
	return tracing.Select("scene")
}
