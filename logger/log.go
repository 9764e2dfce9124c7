/*
 * Logging-related functions.
 *
 * (c) 2011-2012 Bernd Fix   >Y<
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or (at
 * your option) any later version.
 *
 * This program is distributed in the hope that it will be useful, but
 * WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
 * General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 */

package logger

///////////////////////////////////////////////////////////////////////
// Import external declarations

import (
	"fmt"
	"os"
	"time"
)

///////////////////////////////////////////////////////////////////////
// Logging constants

const (
	// CRITICAL errors
	CRITICAL = iota
	// SEVERE errors
	SEVERE
	// ERROR message
	ERROR
	// WARN for warning messages
	WARN
	// INFO is for informational messages
	INFO
	// DBG for debug messages
	DBG
)

///////////////////////////////////////////////////////////////////////
// Local types

type logger struct {
	msgChan chan string // message to be logged
	logfile *os.File    // current log file (can be stdout/stderr)
	level   int         // current log level
}

///////////////////////////////////////////////////////////////////////
// Local variables

var (
	logInst *logger // singleton logger instance
)

///////////////////////////////////////////////////////////////////////
// Logger-internal methods / functions

func init() {
	logInst = new(logger)
	logInst.msgChan = make(chan string)
	logInst.logfile = os.Stdout
	logInst.level = INFO

	go func() {
		for msg := range logInst.msgChan {
			logInst.logfile.WriteString(msg)
		}
	}()
}

///////////////////////////////////////////////////////////////////////
// Public logging functions.

// Println punches logging data for given level.
func Println(level int, line string) {
	if level <= logInst.level {
		ts := time.Now().Format(time.Stamp)
		logInst.msgChan <- ts + " " + getTag(level) + line + "\n"
	}
}

// Printf punches formatted logging data for a given level.
func Printf(level int, format string, v ...interface{}) {
	if level <= logInst.level {
		ts := time.Now().Format(time.Stamp)
		logInst.msgChan <- ts + " " + getTag(level) + fmt.Sprintf(format, v...)
	}
}

//=====================================================================
// Human-readable log tags
//=====================================================================

// GetLogLevel returns the current numeric log level.
func GetLogLevel() int {
	return logInst.level
}

// SetLogLevel sets the logging level from a numeric value.
func SetLogLevel(lvl int) {
	if lvl < CRITICAL || lvl > DBG {
		Printf(WARN, "[logger] Unknown loglevel '%d' requested -- ignored.\n", lvl)
		return
	}
	logInst.level = lvl
}

// getTag returns the loglevel tag as a prefix for a message.
func getTag(level int) string {
	switch level {
	case CRITICAL:
		return "{C}"
	case SEVERE:
		return "{S}"
	case ERROR:
		return "{E}"
	case WARN:
		return "{W}"
	case INFO:
		return "{I}"
	case DBG:
		return "{D}"
	}
	return "{?}"
}
