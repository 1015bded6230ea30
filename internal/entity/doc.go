// Package entity provides an advisory view of the external entity registry.
//
// The registry itself (and its Home Assistant / Z-Wave / zigbee2mqtt sync
// jobs) lives outside this module. Sentry only consumes a flat snapshot of
// known entity ids, and only to warn the user about references to entities
// the registry has never seen. A warning is advisory: validation never
// fails because an entity is unknown, since registries lag reality.
package entity
