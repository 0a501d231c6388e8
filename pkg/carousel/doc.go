// Package carousel implements the state machine behind a slide carousel:
// an ordered slide registry with a single selected item, wraparound
// navigation, a tag-guarded autoplay timer driven by the bubbletea event
// loop, a notifier that announces every committed navigation, and a plugin
// host that lets controls attach behavior without the carousel knowing
// about them. Frontends compose a Carousel with plugins from the controls
// package and forward event-loop messages to them.
package carousel
