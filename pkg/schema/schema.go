/*
schema implements the request and response types for the generative AI API:
chat completions, image generation, speech synthesis, transcription and
translation, and embeddings.

Requests are created with a constructor which takes the required fields and
applies defaults for everything else. Optional fields are set with functional
options and are omitted from the wire encoding when not set.
*/
package schema
