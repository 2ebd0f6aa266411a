package i18n

var en = map[string]string{
	"check.checking":     "Checking %s for updates...",
	"check.up_to_date":   "%s is up to date (%s)",
	"check.available":    "Update available for %s: %s -> %s",
	"check.not_installed": "%s is not installed; latest release is %s",

	"update.downloading": "Downloading %s...",
	"update.extracting":  "Extracting...",
	"update.installing":  "Installing...",
	"update.done":        "%s updated to %s",
	"update.confirm":     "Install %s %s?",
	"update.canceled":    "Update canceled.",

	"rollback.done":      "%s rolled back to the previous version",
	"rollback.no_backup": "No backup available for %s",

	"backup.created":  "Backup %q created (%s)",
	"backup.restored": "Backup %q restored",
	"backup.deleted":  "Backup deleted",
	"backup.none":     "No backups yet",

	"launch.started":   "%s started (pid %d)",
	"uninstall.done":   "%s uninstalled",
	"uninstall.absent": "%s is not installed",

	"selfupdate.current":   "The launcher is up to date (%s)",
	"selfupdate.available": "Launcher update available: %s -> %s",
	"selfupdate.done":      "Launcher updated to %s, restart to use it",

	"watch.started": "Watching for updates (%s), press Ctrl+C to stop",
	"watch.event":   "Update available for %s: %s",
}

var de = map[string]string{
	"check.checking":     "Suche nach Updates für %s...",
	"check.up_to_date":   "%s ist aktuell (%s)",
	"check.available":    "Update für %s verfügbar: %s -> %s",
	"check.not_installed": "%s ist nicht installiert; neueste Version ist %s",

	"update.downloading": "Lade %s herunter...",
	"update.extracting":  "Entpacke...",
	"update.installing":  "Installiere...",
	"update.done":        "%s wurde auf %s aktualisiert",
	"update.confirm":     "%s %s installieren?",
	"update.canceled":    "Update abgebrochen.",

	"rollback.done":      "%s wurde auf die vorherige Version zurückgesetzt",
	"rollback.no_backup": "Kein Backup für %s vorhanden",

	"backup.created":  "Backup %q erstellt (%s)",
	"backup.restored": "Backup %q wiederhergestellt",
	"backup.deleted":  "Backup gelöscht",
	"backup.none":     "Noch keine Backups",

	"launch.started":   "%s gestartet (PID %d)",
	"uninstall.done":   "%s wurde deinstalliert",
	"uninstall.absent": "%s ist nicht installiert",

	"selfupdate.current":   "Der Launcher ist aktuell (%s)",
	"selfupdate.available": "Launcher-Update verfügbar: %s -> %s",
	"selfupdate.done":      "Launcher auf %s aktualisiert, Neustart erforderlich",

	"watch.started": "Überwache Updates (%s), zum Beenden Strg+C drücken",
	"watch.event":   "Update für %s verfügbar: %s",
}
